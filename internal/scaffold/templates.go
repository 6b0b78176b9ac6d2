package scaffold

// Template payloads for generated project files. Rendering is plain string
// substitution on the __PACKAGE__ / __APP_TYPE__ / __APP_NAME__ markers.

const manifestTemplate = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android"
    package="__PACKAGE__">

    <uses-permission android:name="android.permission.INTERNET" />

    <application
        android:allowBackup="true"
        android:icon="@mipmap/ic_launcher"
        android:label="@string/app_name"
        android:roundIcon="@mipmap/ic_launcher_round"
        android:supportsRtl="true"
        android:theme="@style/Theme.ForgeApp">

        <activity
            android:name=".MainActivity"
            android:exported="true">
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
                <category android:name="android.intent.category.LAUNCHER" />
            </intent-filter>
        </activity>
    </application>
</manifest>
`

const calculatorActivityTemplate = `package __PACKAGE__;

import android.os.Bundle;
import android.view.View;
import android.widget.Button;
import android.widget.TextView;
import androidx.appcompat.app.AppCompatActivity;

public class MainActivity extends AppCompatActivity {

    private TextView display;
    private String currentNumber = "";
    private String operation = "";
    private double firstNumber = 0;

    @Override
    protected void onCreate(Bundle savedInstanceState) {
        super.onCreate(savedInstanceState);
        setContentView(R.layout.activity_main);

        display = findViewById(R.id.display);

        int[] numberButtons = {
            R.id.btn_0, R.id.btn_1, R.id.btn_2, R.id.btn_3, R.id.btn_4,
            R.id.btn_5, R.id.btn_6, R.id.btn_7, R.id.btn_8, R.id.btn_9
        };

        for (int id : numberButtons) {
            findViewById(id).setOnClickListener(v -> {
                Button btn = (Button) v;
                currentNumber += btn.getText().toString();
                display.setText(currentNumber);
            });
        }

        findViewById(R.id.btn_add).setOnClickListener(v -> performOperation("+"));
        findViewById(R.id.btn_subtract).setOnClickListener(v -> performOperation("-"));
        findViewById(R.id.btn_multiply).setOnClickListener(v -> performOperation("*"));
        findViewById(R.id.btn_divide).setOnClickListener(v -> performOperation("/"));

        findViewById(R.id.btn_equals).setOnClickListener(v -> calculateResult());
        findViewById(R.id.btn_clear).setOnClickListener(v -> clearAll());
    }

    private void performOperation(String op) {
        if (!currentNumber.isEmpty()) {
            firstNumber = Double.parseDouble(currentNumber);
            operation = op;
            currentNumber = "";
            display.setText(op);
        }
    }

    private void calculateResult() {
        if (!currentNumber.isEmpty() && !operation.isEmpty()) {
            double secondNumber = Double.parseDouble(currentNumber);
            double result = 0;

            switch (operation) {
                case "+": result = firstNumber + secondNumber; break;
                case "-": result = firstNumber - secondNumber; break;
                case "*": result = firstNumber * secondNumber; break;
                case "/": result = firstNumber / secondNumber; break;
            }

            display.setText(String.valueOf(result));
            currentNumber = String.valueOf(result);
            operation = "";
        }
    }

    private void clearAll() {
        currentNumber = "";
        operation = "";
        firstNumber = 0;
        display.setText("0");
    }
}
`

const webviewActivityTemplate = `package __PACKAGE__;

import android.os.Bundle;
import android.webkit.WebView;
import android.webkit.WebViewClient;
import androidx.appcompat.app.AppCompatActivity;

public class MainActivity extends AppCompatActivity {

    private WebView webView;

    @Override
    protected void onCreate(Bundle savedInstanceState) {
        super.onCreate(savedInstanceState);
        setContentView(R.layout.activity_main);

        webView = findViewById(R.id.webview);
        webView.setWebViewClient(new WebViewClient());
        webView.getSettings().setJavaScriptEnabled(true);
        webView.loadUrl("https://github.com");
    }

    @Override
    public void onBackPressed() {
        if (webView.canGoBack()) {
            webView.goBack();
        } else {
            super.onBackPressed();
        }
    }
}
`

const todoActivityTemplate = `package __PACKAGE__;

import android.os.Bundle;
import android.view.View;
import android.widget.Button;
import android.widget.EditText;
import android.widget.ListView;
import androidx.appcompat.app.AppCompatActivity;
import java.util.ArrayList;
import java.util.List;

public class MainActivity extends AppCompatActivity {

    private List<String> todoItems;
    private TodoAdapter adapter;
    private EditText inputField;

    @Override
    protected void onCreate(Bundle savedInstanceState) {
        super.onCreate(savedInstanceState);
        setContentView(R.layout.activity_main);

        todoItems = new ArrayList<>();
        adapter = new TodoAdapter(this, todoItems);

        ListView listView = findViewById(R.id.todo_list);
        listView.setAdapter(adapter);

        inputField = findViewById(R.id.todo_input);
        Button addButton = findViewById(R.id.btn_add);

        addButton.setOnClickListener(v -> {
            String newItem = inputField.getText().toString().trim();
            if (!newItem.isEmpty()) {
                todoItems.add(newItem);
                adapter.notifyDataSetChanged();
                inputField.setText("");
            }
        });

        listView.setOnItemClickListener((parent, view, position, id) -> {
            todoItems.remove(position);
            adapter.notifyDataSetChanged();
        });
    }
}

class TodoAdapter extends android.widget.ArrayAdapter<String> {

    public TodoAdapter(MainActivity context, List<String> items) {
        super(context, android.R.layout.simple_list_item_1, items);
    }
}
`

// genericActivityTemplate backs every archetype without a dedicated source
// template; it echoes the archetype name at runtime.
const genericActivityTemplate = `package __PACKAGE__;

import android.os.Bundle;
import android.widget.TextView;
import androidx.appcompat.app.AppCompatActivity;

public class MainActivity extends AppCompatActivity {

    @Override
    protected void onCreate(Bundle savedInstanceState) {
        super.onCreate(savedInstanceState);
        setContentView(R.layout.activity_main);

        TextView textView = findViewById(R.id.textView);
        textView.setText("Welcome to your __APP_TYPE__ app!");

        if (android.os.Build.VERSION.SDK_INT >= android.os.Build.VERSION_CODES.O) {
            getDelegate().setLocalNightMode(
                android.content.res.Configuration.UI_MODE_NIGHT_YES);
        }
    }
}
`

const calculatorLayoutTemplate = `<?xml version="1.0" encoding="utf-8"?>
<LinearLayout xmlns:android="http://schemas.android.com/apk/res/android"
    android:layout_width="match_parent"
    android:layout_height="match_parent"
    android:orientation="vertical"
    android:padding="16dp">

    <TextView
        android:id="@+id/display"
        android:layout_width="match_parent"
        android:layout_height="80dp"
        android:text="0"
        android:textSize="32sp"
        android:gravity="end|center_vertical"
        android:background="#f0f0f0"
        android:padding="16dp" />

    <GridLayout
        android:layout_width="match_parent"
        android:layout_height="wrap_content"
        android:columnCount="4"
        android:rowCount="5">

        <Button android:id="@+id/btn_clear" android:text="C" style="@style/CalcButton" />
        <Button android:id="@+id/btn_divide" android:text="/" style="@style/CalcButton" />
        <Button android:id="@+id/btn_multiply" android:text="*" style="@style/CalcButton" />
        <Button android:id="@+id/btn_backspace" android:text="⌫" style="@style/CalcButton" />

        <Button android:id="@+id/btn_7" android:text="7" style="@style/CalcButton" />
        <Button android:id="@+id/btn_8" android:text="8" style="@style/CalcButton" />
        <Button android:id="@+id/btn_9" android:text="9" style="@style/CalcButton" />
        <Button android:id="@+id/btn_subtract" android:text="-" style="@style/CalcButton" />

        <Button android:id="@+id/btn_4" android:text="4" style="@style/CalcButton" />
        <Button android:id="@+id/btn_5" android:text="5" style="@style/CalcButton" />
        <Button android:id="@+id/btn_6" android:text="6" style="@style/CalcButton" />
        <Button android:id="@+id/btn_add" android:text="+" style="@style/CalcButton" />

        <Button android:id="@+id/btn_1" android:text="1" style="@style/CalcButton" />
        <Button android:id="@+id/btn_2" android:text="2" style="@style/CalcButton" />
        <Button android:id="@+id/btn_3" android:text="3" style="@style/CalcButton" />
        <Button android:id="@+id/btn_equals" android:text="="
            android:layout_rowSpan="2" style="@style/CalcButton" />

        <Button android:id="@+id/btn_0" android:text="0"
            android:layout_columnSpan="2" style="@style/CalcButton" />
        <Button android:id="@+id/btn_dot" android:text="." style="@style/CalcButton" />

    </GridLayout>
</LinearLayout>
`

const calculatorStylesTemplate = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <style name="CalcButton">
        <item name="android:layout_width">0dp</item>
        <item name="android:layout_height">80dp</item>
        <item name="android:layout_columnWeight">1</item>
        <item name="android:layout_rowWeight">1</item>
        <item name="android:textSize">24sp</item>
        <item name="android:backgroundTint">#6200EE</item>
        <item name="android:textColor">#FFFFFF</item>
    </style>
</resources>
`

const webviewLayoutTemplate = `<?xml version="1.0" encoding="utf-8"?>
<LinearLayout xmlns:android="http://schemas.android.com/apk/res/android"
    android:layout_width="match_parent"
    android:layout_height="match_parent"
    android:orientation="vertical">

    <WebView
        android:id="@+id/webview"
        android:layout_width="match_parent"
        android:layout_height="match_parent" />

</LinearLayout>
`

const todoLayoutTemplate = `<?xml version="1.0" encoding="utf-8"?>
<LinearLayout xmlns:android="http://schemas.android.com/apk/res/android"
    android:layout_width="match_parent"
    android:layout_height="match_parent"
    android:orientation="vertical"
    android:padding="16dp">

    <TextView
        android:layout_width="match_parent"
        android:layout_height="wrap_content"
        android:text="Todo List"
        android:textSize="24sp"
        android:textStyle="bold"
        android:gravity="center"
        android:padding="16dp" />

    <LinearLayout
        android:layout_width="match_parent"
        android:layout_height="wrap_content"
        android:orientation="horizontal">

        <EditText
            android:id="@+id/todo_input"
            android:layout_width="0dp"
            android:layout_height="wrap_content"
            android:layout_weight="1"
            android:hint="Enter todo item"
            android:padding="12dp" />

        <Button
            android:id="@+id/btn_add"
            android:layout_width="wrap_content"
            android:layout_height="wrap_content"
            android:text="Add"
            android:padding="12dp" />
    </LinearLayout>

    <ListView
        android:id="@+id/todo_list"
        android:layout_width="match_parent"
        android:layout_height="match_parent"
        android:padding="8dp" />

</LinearLayout>
`

const genericLayoutTemplate = `<?xml version="1.0" encoding="utf-8"?>
<LinearLayout xmlns:android="http://schemas.android.com/apk/res/android"
    android:layout_width="match_parent"
    android:layout_height="match_parent"
    android:orientation="vertical"
    android:gravity="center"
    android:padding="24dp">

    <TextView
        android:id="@+id/textView"
        android:layout_width="wrap_content"
        android:layout_height="wrap_content"
        android:text="Hello from Forge!"
        android:textSize="24sp"
        android:textStyle="bold" />

    <TextView
        android:layout_width="wrap_content"
        android:layout_height="wrap_content"
        android:text="Your app is ready!"
        android:textSize="18sp"
        android:layout_marginTop="16dp" />

</LinearLayout>
`

const stringsTemplate = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="app_name">__APP_NAME__</string>
    <string name="hello_world">Hello from Forge!</string>
</resources>
`

const appBuildGradleTemplate = `plugins {
    id 'com.android.application'
}

android {
    namespace '__PACKAGE__'
    compileSdk 34

    defaultConfig {
        applicationId "__PACKAGE__"
        minSdk 21
        targetSdk 34
        versionCode 1
        versionName "1.0"
    }

    buildTypes {
        release {
            minifyEnabled false
            proguardFiles getDefaultProguardFile('proguard-android-optimize.txt'), 'proguard-rules.pro'
        }
    }

    compileOptions {
        sourceCompatibility JavaVersion.VERSION_1_8
        targetCompatibility JavaVersion.VERSION_1_8
    }
}

dependencies {
    implementation 'androidx.appcompat:appcompat:1.6.1'
    implementation 'com.google.android.material:material:1.10.0'
    implementation 'androidx.constraintlayout:constraintlayout:2.1.4'
}
`

const rootBuildGradleTemplate = `plugins {
    id 'com.android.application' version '8.1.0' apply false
}
`

const settingsGradleTemplate = `pluginManagement {
    repositories {
        google()
        mavenCentral()
        gradlePluginPortal()
    }
}
dependencyResolutionManagement {
    repositoriesMode.set(RepositoriesMode.FAIL_ON_PROJECT_REPOS)
    repositories {
        google()
        mavenCentral()
    }
}
rootProject.name = "ForgeApp"
include ':app'
`

const gradlePropertiesTemplate = `org.gradle.jvmargs=-Xmx2048m -Dfile.encoding=UTF-8
android.useAndroidX=true
android.enableJetifier=true
`

// stubArtifactContent is the placeholder written at the conventional APK
// output path so status/download can be exercised without a toolchain. A
// real gradle build overwrites it.
const stubArtifactContent = `Forge APK Builder - placeholder artifact
=========================================
This file stands in for a real APK until the Gradle toolchain runs.

To produce a real APK:
1. Install the Android SDK
2. Set ANDROID_SDK_ROOT
3. Build with: ./gradlew assembleDebug

The complete generated Android source lives next to this file.
`
